package core

type ShellConfig interface {
	GetPrompt() string
	GetHistoryPath() string
	GetSeed() uint64
}
