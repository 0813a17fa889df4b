package systems

import (
	"github.com/decker502/dimologo/pkg/components"
	"github.com/decker502/dimologo/pkg/ecs"
)

// maxTicksPerUpdate 单次 Update 最多补齐的 tick 数
// 窗口拖动、断点调试等造成的长帧不会让动画瞬间跳过多个阶段
const maxTicksPerUpdate = 4

// LogoAnimationSystem Logo 动画驱动系统
//
// 游戏循环以 TPS（通常 60）调用 Update，本系统把真实时间累积起来，
// 按每个 Logo 的固定 tick 频率（默认 20 Hz）调用 Clock.Tick。
type LogoAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewLogoAnimationSystem 创建 Logo 动画驱动系统
func NewLogoAnimationSystem(em *ecs.EntityManager) *LogoAnimationSystem {
	return &LogoAnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有正在播放的 Logo
func (s *LogoAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LogoComponent](s.entityManager)

	for _, id := range entities {
		logoComp, ok := ecs.GetComponent[*components.LogoComponent](s.entityManager, id)
		if !ok || logoComp.Clock == nil {
			continue
		}

		// 停止状态下不累积，恢复播放时从完整周期开始计时
		if !logoComp.Clock.IsRunning() || logoComp.TickPeriod <= 0 {
			logoComp.TickAccumulator = 0
			continue
		}

		logoComp.TickAccumulator += deltaTime
		ticks := 0
		for logoComp.TickAccumulator >= logoComp.TickPeriod {
			logoComp.TickAccumulator -= logoComp.TickPeriod
			logoComp.Clock.Tick()
			ticks++
			if ticks >= maxTicksPerUpdate {
				logoComp.TickAccumulator = 0
				break
			}
		}
	}
}
