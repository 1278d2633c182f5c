// Package shutdown coordinates graceful process termination.
//
// Components register hooks with OnShutdown during startup. Wait blocks
// until SIGINT/SIGTERM arrives or a component reports a fatal error with
// Fail, then runs the hooks in reverse registration order under a
// timeout.
//
//	h := shutdown.NewHandler(30 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	go func() {
//		if err := srv.Serve(ctx); err != nil {
//			h.Fail(err)
//		}
//	}()
//	return h.Wait()
package shutdown
