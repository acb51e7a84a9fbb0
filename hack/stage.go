package hack

// Stage identifies the pipeline step an error was raised in.
type Stage int

//go:generate go tool stringer -linecomment -type=Stage
const (
	STAGE_PREPROCESS = Stage(0) // preprocess
	STAGE_LABEL      = Stage(1) // label
	STAGE_SYMBOL     = Stage(2) // symbol
	STAGE_ENCODE     = Stage(3) // encode
)
