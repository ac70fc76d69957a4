package component

// Phase is the lifecycle stage of a stick. A stick only ever moves forward:
// Pending -> Flying -> Attached.
type Phase int

const (
	Pending  Phase = iota // spawned on the platform, waiting for launch
	Flying                // launched, moving toward the disc
	Attached              // co-rotating with the disc
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Flying:
		return "flying"
	case Attached:
		return "attached"
	}
	return "unknown"
}

// Attachment is captured once when a stick reaches the disc.
type Attachment struct {
	AttachAngle float64 // disc angle at the moment of attachment
	RestAngle   float64 // stick orientation relative to the disc surface
}

// Stick is a single stick. Pos is only meaningful before attachment;
// Attachment is nil until then.
type Stick struct {
	Length, Width float64
	Phase         Phase
	Pos           Vec2
	Attachment    *Attachment
}

// NewStick returns a pending stick at pos.
func NewStick(pos Vec2, length, width float64) *Stick {
	return &Stick{
		Length: length,
		Width:  width,
		Phase:  Pending,
		Pos:    pos,
	}
}

func (s *Stick) IsPending() bool  { return s.Phase == Pending }
func (s *Stick) IsFlying() bool   { return s.Phase == Flying }
func (s *Stick) IsAttached() bool { return s.Phase == Attached }

// Launch moves a pending stick into flight. It reports whether the phase
// changed.
func (s *Stick) Launch() bool {
	if s.Phase != Pending {
		return false
	}
	s.Phase = Flying
	return true
}

// Attach fixes a flying stick to the disc. It reports whether the phase
// changed; an attached stick keeps its first attachment.
func (s *Stick) Attach(discAngle, restAngle float64) bool {
	if s.Phase != Flying {
		return false
	}
	s.Phase = Attached
	s.Attachment = &Attachment{AttachAngle: discAngle, RestAngle: restAngle}
	return true
}

// AngleAt returns the absolute angle of an attached stick for the given disc
// angle. ok is false for sticks that are not attached.
func (s *Stick) AngleAt(discAngle float64) (angle float64, ok bool) {
	if s.Phase != Attached || s.Attachment == nil {
		return 0, false
	}
	return discAngle - s.Attachment.AttachAngle + s.Attachment.RestAngle, true
}
