package protocol

const (
	ScreenW = 800
	ScreenH = 800

	// Net/update cadence
	ReportIntervalMs = 100

	// Gameplay tuning shared with the server
	MoveSpeed       = 3.0 // cells per second
	CollisionRadius = 0.3
	ProbeDistance   = 0.4
)

const GameName = "Maze Hunt"
