package core

const (
	AppName    = "taxsh"
	AppVersion = "0.1.0"
)
