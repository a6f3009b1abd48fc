package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	tokentypes "github.com/anmol/mytoken/token/types"
)

// Env holds the values read from the .env file and the process environment.
type Env struct {
	OwnerAddress string
	DeployerKey  string
	RPCURL       string
}

// LoadEnv reads the dotenv file at path when it exists. Variables set in the process
// environment take precedence over the file.
func LoadEnv(path string) (Env, error) {
	v := viper.New()

	if path != "" {
		st, err := os.Stat(path)
		switch {
		case err == nil && st.IsDir():
			return Env{}, fmt.Errorf("env path is a directory: %s", path)
		case err == nil:
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Env{}, fmt.Errorf("failed to read env file: %w", err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return Env{}, fmt.Errorf("stat env file: %w", err)
		}
	}

	v.AutomaticEnv()

	return Env{
		OwnerAddress: v.GetString(tokentypes.EnvOwnerAddress),
		DeployerKey:  v.GetString(tokentypes.EnvDeployerKey),
		RPCURL:       v.GetString(tokentypes.EnvRPCURL),
	}, nil
}
