package domain

import "time"

// PlaybackState represents the transport state of the player
type PlaybackState string

const (
	// StatePlaying indicates the player is currently playing
	StatePlaying PlaybackState = "play"
	// StatePaused indicates playback is paused
	StatePaused PlaybackState = "pause"
	// StateStopped indicates playback is stopped
	StateStopped PlaybackState = "stop"
	// StateUnknown is reported when the player state cannot be determined
	StateUnknown PlaybackState = "unknown"
)

// TrackInfo describes the currently loaded track. Tags the player does not
// report are left empty. Values are comparable; the watcher detects song
// changes by structural equality.
type TrackInfo struct {
	// Title of the current track
	Title string
	// Artist name
	Artist string
	// Album name
	Album string
	// File is the track path relative to the music library root
	File string
}

// RemoteKey identifies a recognized button on the remote control
type RemoteKey int

const (
	KeyPlay RemoteKey = iota
	KeyPause
	KeyNext
	KeyPrevious
	KeyStop
	KeyFastForward
	KeyRewind
)

func (k RemoteKey) String() string {
	switch k {
	case KeyPlay:
		return "play"
	case KeyPause:
		return "pause"
	case KeyNext:
		return "next"
	case KeyPrevious:
		return "previous"
	case KeyStop:
		return "stop"
	case KeyFastForward:
		return "fastforward"
	case KeyRewind:
		return "rewind"
	default:
		return "unknown"
	}
}

// Message is one short-lived overlay notification
type Message struct {
	Text   string
	X      int
	Y      int
	Width  int
	Align  string
	Colour string
	Font   string
	Delay  time.Duration
}
