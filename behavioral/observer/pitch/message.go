package pitch

// Times is how many times a participant repeats its sound.
type Times = int

// SoundPitch is the category a participant filters messages on.
type SoundPitch int

const (
	High SoundPitch = iota
	Low
)

func (p SoundPitch) String() string {
	switch p {
	case High:
		return "HIGH"
	case Low:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Message is what the Cat broadcasts to the choir.
type Message struct {
	Repeat Times
	Pitch  SoundPitch
}

// LowMessage asks for the sound at low pitch, repeat times.
func LowMessage(repeat Times) Message {
	return Message{Repeat: repeat, Pitch: Low}
}

// HighMessage asks for the sound at high pitch, repeat times.
func HighMessage(repeat Times) Message {
	return Message{Repeat: repeat, Pitch: High}
}
