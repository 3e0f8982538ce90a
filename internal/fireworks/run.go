package fireworks

import "context"

// Run ticks s back to back until ctx is done or frames ticks have run.
// frames <= 0 means run until ctx is done. onFrame, when set, sees every
// census; a non-nil error from it stops the run and is returned.
func Run(ctx context.Context, s *Show, frames int, onFrame func(Census) error) error {
	for i := 0; frames <= 0 || i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c := s.Tick()
		if onFrame != nil {
			if err := onFrame(c); err != nil {
				return err
			}
		}
	}
	return nil
}
