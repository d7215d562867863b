// Package watch provides filesystem watching for continuous validation.
//
// The watcher registers every directory under the configured root with
// fsnotify, filters events down to markdown changes, and debounces bursts so
// an editor writing a file several times in quick succession triggers a
// single revalidation.
//
//	w, err := watch.New(watch.DefaultConfig("steering"), logger)
//	if err != nil {
//	    return err
//	}
//	err = w.Watch(ctx, func() error {
//	    return revalidate()
//	})
//
// Watch blocks until the context is cancelled.
package watch
