package termctl

// command is a single screen-mode transition with an exact inverse.
// apply must not partially take effect: on error the terminal is unchanged.
// revert must be harmless when apply never ran or already failed.
type command interface {
	apply(out *Output) error
	revert(out *Output) error
}
