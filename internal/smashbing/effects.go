package smashbing

import "fmt"

// SoundID enumerates every sound the simulation may ask its host to play.
type SoundID int

const (
	SoundBounce         SoundID = iota // Wall or floor bounce
	SoundBounceCharge                  // Floor bounce that refilled charges
	SoundImpulse                       // Fire leaving one charge
	SoundImpulseExhaust                // Fire using the last charge
	SoundBreak1                        // Block crash variants
	SoundBreak2
	SoundBreak3
	SoundBreak4
	SoundWin // Last block cleared
)

var breakSounds = [...]SoundID{SoundBreak1, SoundBreak2, SoundBreak3, SoundBreak4}

// String returns the asset name for the sound.
func (s SoundID) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundBounceCharge:
		return "bounce_charge"
	case SoundImpulse:
		return "impulse"
	case SoundImpulseExhaust:
		return "impulse_exhaust"
	case SoundBreak1:
		return "break1"
	case SoundBreak2:
		return "break2"
	case SoundBreak3:
		return "break3"
	case SoundBreak4:
		return "break4"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// IsBreak reports whether the sound is one of the block crash variants.
func (s SoundID) IsBreak() bool {
	return s >= SoundBreak1 && s <= SoundBreak4
}

// EffectKind distinguishes the effect variants.
type EffectKind int

const (
	EffectSound EffectKind = iota // Play Effect.Sound
	EffectExit                    // Host should end the session
)

// Effect is a side-effect request returned from Game.Update.
// The simulation never performs effects itself; hosts execute them in order.
type Effect struct {
	Kind  EffectKind
	Sound SoundID // Only meaningful for EffectSound
}

// SoundEffect creates a sound request.
func SoundEffect(id SoundID) Effect {
	return Effect{Kind: EffectSound, Sound: id}
}

// ExitEffect creates an exit request.
func ExitEffect() Effect {
	return Effect{Kind: EffectExit}
}

// String returns a short description such as "sound:bounce" or "exit".
func (e Effect) String() string {
	switch e.Kind {
	case EffectSound:
		return fmt.Sprintf("sound:%s", e.Sound)
	case EffectExit:
		return "exit"
	default:
		return "unknown"
	}
}

// CommandKind distinguishes the command variants.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandFire
)

// Command is one unit of player input for a tick.
type Command struct {
	Kind CommandKind
	X, Y float64 // Fire target in arena coordinates (origin bottom-left, y-up)
}

// Fire creates a command that fires the ball towards (x, y).
func Fire(x, y float64) Command {
	return Command{Kind: CommandFire, X: x, Y: y}
}

// String returns a human-readable form of the command.
func (c Command) String() string {
	if c.Kind == CommandFire {
		return fmt.Sprintf("fire(%.2f, %.2f)", c.X, c.Y)
	}
	return "none"
}
