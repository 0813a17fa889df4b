package logo

import (
	"math"
	"testing"
)

func newDefaultClock() *Clock {
	return NewClock(1.2, 0.15, 0.05)
}

// TestClockInitialState 测试新建时钟为 idle 且时间为 0
func TestClockInitialState(t *testing.T) {
	c := newDefaultClock()
	if c.State() != ClockIdle {
		t.Errorf("初始状态 = %v, 期望 idle", c.State())
	}
	if c.Time() != 0 || c.Progress() != 0 {
		t.Errorf("初始时间 = %v, 进度 = %v, 期望 0", c.Time(), c.Progress())
	}
}

// TestClockPlayStop 测试播放与停止的状态切换
func TestClockPlayStop(t *testing.T) {
	c := newDefaultClock()

	c.Play()
	c.Play() // 重复调用无副作用
	if !c.IsRunning() {
		t.Fatal("Play() 后应处于 running")
	}

	c.Tick()
	c.Tick()
	frozen := c.Time()

	c.Stop()
	c.Stop()
	if c.IsRunning() {
		t.Fatal("Stop() 后应处于 idle")
	}
	if c.Tick() {
		t.Error("idle 状态下 Tick() 应返回 false")
	}
	if c.Time() != frozen {
		t.Errorf("idle 状态下时间变化: %v -> %v", frozen, c.Time())
	}
}

// TestClockProgressRoundTrip 测试 SetProgress 后 Progress 读回相同值
func TestClockProgressRoundTrip(t *testing.T) {
	for _, d := range []float64{0.1, 1.2, 3, 100} {
		c := NewClock(d, 0.15, 0.05)
		for p := 0.0; p <= 1.0; p += 0.05 {
			c.SetProgress(p)
			if math.Abs(c.Progress()-p) > 1e-9 {
				t.Errorf("d=%v: SetProgress(%v) 后 Progress() = %v", d, p, c.Progress())
			}
		}
	}
}

// TestClockSetProgressStops 测试 SetProgress 总是切换到 idle
func TestClockSetProgressStops(t *testing.T) {
	c := newDefaultClock()
	c.Play()
	c.SetProgress(0.5)
	if c.State() != ClockIdle {
		t.Errorf("SetProgress 后状态 = %v, 期望 idle", c.State())
	}
	if math.Abs(c.Time()-0.6) > 1e-9 {
		t.Errorf("SetProgress(0.5) 后时间 = %v, 期望 0.6", c.Time())
	}

	c.SetProgress(0.2)
	if c.State() != ClockIdle {
		t.Errorf("idle 状态下 SetProgress 后状态 = %v, 期望 idle", c.State())
	}
}

// TestClockSetProgressClamp 测试越界进度被截断
func TestClockSetProgressClamp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"负数", -0.5, 0},
		{"大于 1", 3, 1},
		{"NaN", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newDefaultClock()
			c.SetProgress(tt.input)
			if c.Progress() != tt.expected {
				t.Errorf("SetProgress(%v) 后 Progress() = %v, 期望 %v", tt.input, c.Progress(), tt.expected)
			}
		})
	}
}

// TestClockProgressNonPositiveDuration 测试时长不为正时进度为 0
func TestClockProgressNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1} {
		c := NewClock(d, 0.15, 0.05)
		c.SetProgress(0.7)
		if c.Progress() != 0 {
			t.Errorf("duration=%v: Progress() = %v, 期望 0", d, c.Progress())
		}
	}
}

// TestClockProgressDuringInterval 测试停顿期内进度保持为 1
func TestClockProgressDuringInterval(t *testing.T) {
	c := newDefaultClock()
	c.Play()
	for i := 0; i < 25; i++ {
		c.Tick()
	}
	if c.Time() <= 1.2 {
		t.Fatalf("25 次 tick 后时间 = %v, 期望处于停顿期", c.Time())
	}
	if c.Progress() != 1 {
		t.Errorf("停顿期 Progress() = %v, 期望 1", c.Progress())
	}
}

// TestClockTickWrap 测试超过 duration+interval 后归零
func TestClockTickWrap(t *testing.T) {
	c := newDefaultClock()
	c.Play()

	limit := c.Duration() + c.Interval()
	ticks := 0
	for {
		before := c.Time()
		c.Tick()
		ticks++
		if c.Time() == 0 {
			// 归零时，上一次的时间加一个步长必然超过上限
			if before+c.Step() <= limit {
				t.Errorf("第 %d 次 tick 提前归零: %v + %v <= %v", ticks, before, c.Step(), limit)
			}
			break
		}
		if c.Time() > limit {
			t.Fatalf("第 %d 次 tick 后时间 %v 超过上限 %v", ticks, c.Time(), limit)
		}
		if ticks > 100 {
			t.Fatal("时间未归零")
		}
	}

	// 0.05 累加 27 次后略大于 1.2 + 0.15（浮点）
	if ticks != 27 {
		t.Errorf("第 %d 次 tick 归零, 期望第 27 次", ticks)
	}

	// 归零直接回到 0，之后从头计时
	c.Tick()
	if math.Abs(c.Time()-0.05) > 1e-12 {
		t.Errorf("归零后第一次 tick 时间 = %v, 期望 0.05", c.Time())
	}
}

// TestClockSnapToZero 测试归零时丢弃多出的时间
func TestClockSnapToZero(t *testing.T) {
	c := NewClock(1, 0, 0.3)
	c.Play()
	c.Tick() // 0.3
	c.Tick() // 0.6
	c.Tick() // 0.9
	c.Tick() // 1.2 > 1 -> 0
	if c.Time() != 0 {
		t.Errorf("时间 = %v, 期望归零为 0（而非 0.2）", c.Time())
	}
}

// TestClockRedrawRequests 测试 tick 与 SetProgress 都会请求重绘
func TestClockRedrawRequests(t *testing.T) {
	c := newDefaultClock()
	redraws := 0
	c.SetRedrawFunc(func() { redraws++ })

	c.Tick() // idle，不推进也不重绘
	if redraws != 0 {
		t.Errorf("idle tick 触发了重绘: %d", redraws)
	}

	c.Play()
	c.Tick()
	c.Tick()
	c.SetProgress(0.3)
	if redraws != 3 {
		t.Errorf("重绘次数 = %d, 期望 3", redraws)
	}
}

// TestClockSetDuration 测试修改时长后进度按新时长计算
func TestClockSetDuration(t *testing.T) {
	c := newDefaultClock()
	c.SetProgress(0.5) // time = 0.6
	c.SetDuration(2.4)
	if math.Abs(c.Progress()-0.25) > 1e-9 {
		t.Errorf("SetDuration 后 Progress() = %v, 期望 0.25", c.Progress())
	}
	c.SetInterval(0.3)
	if c.Interval() != 0.3 {
		t.Errorf("Interval() = %v, 期望 0.3", c.Interval())
	}
}

// TestCycleTimes 测试一个周期的采样时间点
func TestCycleTimes(t *testing.T) {
	times := CycleTimes(1.2, 0.15, 0.05)
	// 0 加上归零前的 26 次 tick
	if len(times) != 27 {
		t.Fatalf("采样数 = %d, 期望 27", len(times))
	}
	if times[0] != 0 {
		t.Errorf("首个时间点 = %v, 期望 0", times[0])
	}
	if math.Abs(times[26]-1.3) > 1e-9 {
		t.Errorf("最后时间点 = %v, 期望 1.3", times[26])
	}

	if got := CycleTimes(1.2, 0.15, 0); len(got) != 1 {
		t.Errorf("step=0 时采样数 = %d, 期望 1", len(got))
	}
}
