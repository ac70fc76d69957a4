package event

const (
	StickSpawned   EventType = "StickSpawned"   // новая палка на платформе
	StickLaunched  EventType = "StickLaunched"  // палка запущена к диску
	StickAttached  EventType = "StickAttached"  // палка закрепилась на диске
	LevelCompleted EventType = "LevelCompleted" // все палки уровня закреплены
	GameOver       EventType = "GameOver"       // две палки совпали по углу
)

// AttachData is the payload of StickAttached.
type AttachData struct {
	Index     int     // position in the attached list
	Angle     float64 // absolute angle at attachment
	Level     int
	Remaining int
}

// LevelData is the payload of LevelCompleted.
type LevelData struct {
	Completed int // level just finished
	Next      int
}

// GameOverData is the payload of GameOver.
type GameOverData struct {
	First, Second int // indices of the overlapping sticks
	Level         int
	Score         int
}
