// Package cache provides the small LRU cache that Screen uses to keep
// display lists for recently seen window sizes.
//
//	c := cache.New[key, flexrect.DisplayList[T]](8)
//	c.Set(k, list)
//	list, ok := c.Get(k)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
