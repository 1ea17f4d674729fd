package service

import (
	"github.com/spec-kit/formula-api/internal/auth"
	"github.com/spec-kit/formula-api/internal/config"
)

const (
	strongPassword = "Zandvoort-Chicane-Overtake-1985!"
	weakPassword   = "12345678"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWT: config.JWTConfig{
			Secret:   "eenveeltemoeilijksecretdatniemandooitzalraden",
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

func newTestPolicies() (*auth.PasswordPolicy, *auth.TokenManager) {
	cfg := testAuthConfig()
	return auth.NewPasswordPolicy(cfg), auth.NewTokenManager(cfg.JWT)
}
