package velocity

import (
	"github.com/pochita1998/velocity-framework/pkg/resource"
)

// =============================================================================
// Resources
// =============================================================================

// Fetcher produces the data for a resource key. It runs on its own
// goroutine; a panic inside it is converted into the resource's error state.
type Fetcher = resource.Fetcher

// CreateResource returns the cached state for key, dispatching fetcher in
// the background on the first call. Repeated calls for the same key reuse
// the existing entry, even while a fetch is still in flight.
//
//	data, loading, errMsg := velocity.CreateResource("user:42", fetchUser)
//	if loading {
//	    return renderSpinner()
//	}
func CreateResource(key string, fetcher Fetcher) (data any, loading bool, errMsg string) {
	return DefaultCache().Request(key, fetcher)
}

// GetResourceState reports the cached state for key without ever
// dispatching a fetch. An unknown key reads as an empty, non-loading
// triple.
func GetResourceState(key string) (data any, loading bool, errMsg string) {
	return DefaultCache().State(key)
}

// InvalidateResource drops the cached entry for key. The next
// CreateResource call for that key fetches fresh data.
func InvalidateResource(key string) {
	DefaultCache().Invalidate(key)
}

// RefetchResource re-dispatches the retained fetcher for key, resetting the
// entry to loading. No-op for unknown keys.
func RefetchResource(key string) {
	DefaultCache().Refetch(key)
}

// SetResourceOptimistic overwrites the cached data for key without touching
// its loading or error state, so an in-flight fetch still lands afterwards.
func SetResourceOptimistic(key string, value any) {
	DefaultCache().SetOptimistic(key, value)
}
