package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kc1212/ssith-go/ssp"
)

// demoConfig holds the parameter record the demo runs with, adapted from
// the teacher's provers/types/config.go flag+env-var parsing pattern.
type demoConfig struct {
	param ssp.Param
}

func newDemoConfig(args ...string) (*demoConfig, error) {
	param := ssp.DefaultParam()
	param.Dimension = getEnvInt("SSITH_N", param.Dimension)
	param.Parties = getEnvInt("SSITH_PARTIES", param.Parties)
	param.CncRounds = getEnvInt("SSITH_M", param.CncRounds)
	param.OpenedRounds = getEnvInt("SSITH_TAU", param.OpenedRounds)
	param.LogA = getEnvInt("SSITH_LOGA", param.LogA)

	for i := 0; i < len(args); i++ {
		if len(args) <= i+1 {
			return nil, fmt.Errorf("ssithdemo: missing value for %s", args[i])
		}
		val, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("ssithdemo: bad value for %s: %w", args[i], err)
		}
		switch args[i] {
		case "--n":
			param.Dimension = val
		case "--parties":
			param.Parties = val
		case "--m":
			param.CncRounds = val
		case "--tau":
			param.OpenedRounds = val
		case "--loga":
			param.LogA = val
		}
		i++
	}

	return &demoConfig{param: param}, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
