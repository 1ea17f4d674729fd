package auth

import (
	"github.com/spec-kit/formula-api/internal/config"
)

const testSecret = "eenveeltemoeilijksecretdatniemandooitzalraden"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWT: config.JWTConfig{
			Secret:   testSecret,
			Issuer:   "formulapi.hogent.be",
			Audience: "formulapi.hogent.be",
		},
		Argon: config.ArgonConfig{
			HashLength: 32,
			TimeCost:   1,
			MemoryCost: 8 * 1024,
		},
		MinScore: 3,
	}
}
