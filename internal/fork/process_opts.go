package fork

type ProcessOpt = func(p *BackgroundProcess)

// WithEnv adds KEY=VALUE environment variables on top of the current environment
func WithEnv(env ...string) ProcessOpt {
	return func(p *BackgroundProcess) {
		if p.cmd.Env == nil {
			p.cmd.Env = p.cmd.Environ()
		}
		p.cmd.Env = append(p.cmd.Env, env...)
	}
}

// WithArgs appends command line arguments
func WithArgs(args ...string) ProcessOpt {
	return func(p *BackgroundProcess) {
		p.cmd.Args = append(p.cmd.Args, args...)
	}
}
