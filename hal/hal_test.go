package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHostHAL(&buf)
	h.Logger().WriteLineString("orbit: 1+i")
	h.Logger().WriteLineBytes([]byte("done"))
	if got := buf.String(); got != "orbit: 1+i\ndone\n" {
		t.Fatalf("log=%q", got)
	}
}

func TestFramebufferSnapshotRGBA(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	for i, p := range []uint16{RGB565(0xff, 0, 0xff), RGB565(0, 0xff, 0)} {
		fb.Buffer()[2*i] = byte(p)
		fb.Buffer()[2*i+1] = byte(p >> 8)
	}

	dst := make([]byte, 2*4)
	fb.snapshotRGBA(dst)
	want := []byte{0xff, 0, 0xff, 0xff, 0, 0xff, 0, 0xff}
	if !bytes.Equal(dst, want) {
		t.Fatalf("rgba=%v, want %v", dst, want)
	}
}

func TestHostTimeTicks(t *testing.T) {
	ht := newHostTime()
	ht.stepN(3)
	for want := uint64(1); want <= 3; want++ {
		if got := <-ht.Ticks(); got != want {
			t.Fatalf("tick=%d, want %d", got, want)
		}
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var buf bytes.Buffer
	steps := 0
	err := runHeadless(context.Background(), newHostHAL(&buf), func(h HAL) (func() error, error) {
		if h.Display().Framebuffer().Width() != DefaultWidth {
			t.Fatalf("width=%d", h.Display().Framebuffer().Width())
		}
		return func() error {
			steps++
			return nil
		}, nil
	}, HeadlessConfig{Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps=%d, want 3", steps)
	}
}

func TestRunHeadlessErrors(t *testing.T) {
	errStep := errors.New("step failed")
	err := runHeadless(context.Background(), newHostHAL(&bytes.Buffer{}), func(HAL) (func() error, error) {
		return func() error { return errStep }, nil
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, errStep) {
		t.Fatalf("err=%v, want %v", err, errStep)
	}

	errInit := errors.New("init failed")
	err = runHeadless(context.Background(), newHostHAL(&bytes.Buffer{}), func(HAL) (func() error, error) {
		return nil, errInit
	}, HeadlessConfig{})
	if !errors.Is(err, errInit) {
		t.Fatalf("err=%v, want %v", err, errInit)
	}

	err = runHeadless(context.Background(), newHostHAL(&bytes.Buffer{}), func(HAL) (func() error, error) {
		return nil, nil
	}, HeadlessConfig{Hz: 2_000_000_000})
	if err == nil {
		t.Fatal("expected invalid hz error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = runHeadless(ctx, newHostHAL(&bytes.Buffer{}), func(HAL) (func() error, error) {
		return nil, nil
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

func TestHostTimeStepUsesElapsedTime(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	ht.step(1)
	now = now.Add(3*TickDuration + TickDuration/2)
	ht.step(1)
	now = now.Add(TickDuration / 2)
	ht.step(1)

	var got []uint64
	for len(ht.ch) > 0 {
		got = append(got, <-ht.ch)
	}
	if len(got) != 5 || got[4] != 5 {
		t.Fatalf("ticks=%v, want 1..5", got)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {0xff, 0xff, 0xff}, {0xff, 0, 0}, {0, 0xff, 0}, {0, 0, 0xff}} {
		r, g, b := RGB888(RGB565(c[0], c[1], c[2]))
		if r != c[0] || g != c[1] || b != c[2] {
			t.Fatalf("round trip %v = (%d,%d,%d)", c, r, g, b)
		}
	}
}
