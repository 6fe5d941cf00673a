// Package resource governs what a dataset load may consume.
//
// A Controller bounds three things:
//
//   - Memory: the total size of inputs held at once (fail-fast)
//   - Loads: how many shard inputs are parsed concurrently
//   - IO: bytes per second read from a source (token bucket)
//
// A nil *Controller is valid and imposes no limits.
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentLoads: 4,
//	    IOLimitBytesPerSec: 32 << 20,
//	})
//
//	if err := rc.AcquireLoad(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseLoad()
//
//	r := resource.NewRateLimitedReader(ctx, src, rc)
package resource
