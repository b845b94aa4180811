package remote

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"mpdwatch/internal/config"
	"mpdwatch/internal/domain"
	"mpdwatch/internal/domain/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Remote: config.RemoteConfig{
			Device:          "/dev/input/test-remote",
			RetrySeconds:    0,
			SeekStepSeconds: 10,
		},
		OSD: config.OSDConfig{Font: "DejaVu Sans-20", Colour: "#20c4bf"},
	}
}

func newListener(t *testing.T) (*Listener, *mocks.MockPlayer, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	osd := mocks.NewMockNotifier(ctrl)
	l := New(zap.NewNop(), testConfig(), player, osd)
	l.sleep = func(time.Duration) {}
	return l, player, osd
}

func keyEvent(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

// Exactly one command per physical press; releases, autorepeats and
// unrecognized codes dispatch nothing.
func TestHandleEventFiltering(t *testing.T) {
	l, player, _ := newListener(t)

	player.EXPECT().Next().Return(nil).Times(1)

	l.handleEvent(keyEvent(evdev.KEY_NEXTSONG, 1)) // press
	l.handleEvent(keyEvent(evdev.KEY_NEXTSONG, 0)) // release
	l.handleEvent(keyEvent(evdev.KEY_NEXTSONG, 2)) // autorepeat
	l.handleEvent(keyEvent(evdev.KEY_A, 1))        // unmapped code
	l.handleEvent(&evdev.InputEvent{Type: evdev.EV_SYN, Code: 0, Value: 1})
	l.handleEvent(nil)
}

func TestKeyDispatchMapping(t *testing.T) {
	tests := []struct {
		name   string
		code   evdev.EvCode
		expect func(p *mocks.MockPlayer, o *mocks.MockNotifier)
	}{
		{
			name: "pause key",
			code: evdev.KEY_PAUSECD,
			expect: func(p *mocks.MockPlayer, o *mocks.MockNotifier) {
				p.EXPECT().Pause().Return(nil)
			},
		},
		{
			name: "next song",
			code: evdev.KEY_NEXTSONG,
			expect: func(p *mocks.MockPlayer, o *mocks.MockNotifier) {
				p.EXPECT().Next().Return(nil)
			},
		},
		{
			name: "previous song",
			code: evdev.KEY_PREVIOUSSONG,
			expect: func(p *mocks.MockPlayer, o *mocks.MockNotifier) {
				p.EXPECT().Previous().Return(nil)
			},
		},
		{
			name: "stop",
			code: evdev.KEY_STOPCD,
			expect: func(p *mocks.MockPlayer, o *mocks.MockNotifier) {
				p.EXPECT().Stop().Return(nil)
			},
		},
		{
			name: "fast forward seeks and notifies",
			code: evdev.KEY_FASTFORWARD,
			expect: func(p *mocks.MockPlayer, o *mocks.MockNotifier) {
				p.EXPECT().SeekRelative(10).Return(nil)
				o.EXPECT().Show(gomock.Cond(func(x any) bool {
					m, ok := x.(domain.Message)
					return ok && m.Text == "+10s"
				}))
			},
		},
		{
			name: "rewind seeks backwards and notifies",
			code: evdev.KEY_REWIND,
			expect: func(p *mocks.MockPlayer, o *mocks.MockNotifier) {
				p.EXPECT().SeekRelative(-10).Return(nil)
				o.EXPECT().Show(gomock.Cond(func(x any) bool {
					m, ok := x.(domain.Message)
					return ok && m.Text == "-10s"
				}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, player, osd := newListener(t)
			tt.expect(player, osd)
			l.handleEvent(keyEvent(tt.code, 1))
		})
	}
}

// The play key toggles against the state fetched fresh at dispatch time.
func TestPlayKeyToggles(t *testing.T) {
	tests := []struct {
		name   string
		expect func(p *mocks.MockPlayer)
	}{
		{
			name: "playing pauses",
			expect: func(p *mocks.MockPlayer) {
				p.EXPECT().Status().Return(domain.StatePlaying, map[string]string{}, nil)
				p.EXPECT().Pause().Return(nil)
			},
		},
		{
			name: "paused plays",
			expect: func(p *mocks.MockPlayer) {
				p.EXPECT().Status().Return(domain.StatePaused, map[string]string{}, nil)
				p.EXPECT().Play().Return(nil)
			},
		},
		{
			name: "status failure plays",
			expect: func(p *mocks.MockPlayer) {
				p.EXPECT().Status().Return(domain.StateUnknown, nil, errors.New("broken pipe"))
				p.EXPECT().Play().Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, player, _ := newListener(t)
			tt.expect(player)
			l.handleEvent(keyEvent(evdev.KEY_PLAYPAUSE, 1))
		})
	}
}

// A command failure is absorbed: the listener keeps dispatching.
func TestDispatchSurvivesCommandFailure(t *testing.T) {
	l, player, _ := newListener(t)

	player.EXPECT().Next().Return(errors.New("player command failed"))
	player.EXPECT().Previous().Return(nil)

	l.handleEvent(keyEvent(evdev.KEY_NEXTSONG, 1))
	l.handleEvent(keyEvent(evdev.KEY_PREVIOUSSONG, 1))
}

type fakeDevice struct {
	events chan *evdev.InputEvent
}

func (d *fakeDevice) ReadOne() (*evdev.InputEvent, error) {
	ev, ok := <-d.events
	if !ok {
		return nil, io.EOF
	}
	return ev, nil
}

func (d *fakeDevice) Close() error { return nil }

// The listener survives a missing device and a mid-read failure: it keeps
// reopening and resumes dispatching without a manual restart.
func TestRunReopensDevice(t *testing.T) {
	l, player, _ := newListener(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opens atomic.Int32
	orig := openDevice
	t.Cleanup(func() { openDevice = orig })

	dev := &fakeDevice{events: make(chan *evdev.InputEvent, 1)}
	dev.events <- keyEvent(evdev.KEY_NEXTSONG, 1)
	close(dev.events) // one press, then a read error

	openDevice = func(path string) (Device, error) {
		if path != "/dev/input/test-remote" {
			t.Errorf("unexpected device path %q", path)
		}
		switch opens.Add(1) {
		case 1:
			return nil, errors.New("no such file or directory")
		case 2:
			return dev, nil
		default:
			cancel()
			return nil, errors.New("no such file or directory")
		}
	}

	dispatched := make(chan struct{})
	player.EXPECT().Next().DoAndReturn(func() error {
		close(dispatched)
		return nil
	})

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	select {
	case <-dispatched:
	case <-time.After(2 * time.Second):
		t.Fatal("press was never dispatched after device reopen")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop on context cancellation")
	}

	if n := opens.Load(); n < 2 {
		t.Errorf("device opened %d times, want at least 2", n)
	}
}
