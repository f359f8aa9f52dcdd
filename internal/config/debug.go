package config

import "os"

func IsDebug() bool {
	return os.Getenv("TAXSH_DEBUG") == "1"
}
