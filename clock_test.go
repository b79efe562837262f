package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	now   float64
	slept  []time.Duration
}

func (f *fakeTime) Now() float64 { return f.now }

func (f *fakeTime) Sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.now += d.Seconds()
}

func TestFrameClockCapsRate(t *testing.T) {
	ft := &fakeTime{now: 10}
	c := newFrameClock(ft.Now, ft.Sleep)

	ft.now += 0.004
	elapsed := c.Tick(60)

	assert.Len(t, ft.slept, 1)
	assert.InDelta(t, 1.0/60-0.004, ft.slept[0].Seconds(), 1e-6)
	assert.InDelta(t, 1.0/60, elapsed.Seconds(), 1e-6)
}

func TestFrameClockSlowFrame(t *testing.T) {
	ft := &fakeTime{}
	c := newFrameClock(ft.Now, ft.Sleep)

	ft.now += 0.25
	elapsed := c.Tick(60)

	assert.Empty(t, ft.slept)
	assert.InDelta(t, 0.25, elapsed.Seconds(), 1e-6)

	ft.now += 0.5
	assert.InDelta(t, 0.5, c.Tick(60).Seconds(), 1e-6)
}

func TestFrameClockUncapped(t *testing.T) {
	ft := &fakeTime{}
	c := newFrameClock(ft.Now, ft.Sleep)

	ft.now += 0.001
	assert.InDelta(t, 0.001, c.Tick(0).Seconds(), 1e-6)
	assert.Empty(t, ft.slept)
}
