package config

// SetUserHomeDirForTest overrides the home directory resolver.
// It returns a restore function to reset the original resolver.
func SetUserHomeDirForTest(fn func() (string, error)) func() {
	orig := userHomeDir
	userHomeDir = fn
	return func() {
		userHomeDir = orig
	}
}

// SetLookupEnvForTest overrides the environment lookup used by LoadConfig.
func SetLookupEnvForTest(fn func(string) (string, bool)) func() {
	orig := lookupEnv
	lookupEnv = fn
	return func() {
		lookupEnv = orig
	}
}
