package services

import "Gin_postgres_redis_share_it/apperr"

// pageWindow validates the paging parameters and translates them into an
// offset/limit pair. from is a raw offset: the number of rows to skip.
func pageWindow(from, size int) (offset, limit int, err error) {
	if size < 1 || from < 0 {
		return 0, 0, apperr.InvalidArgument("invalid paging window: from=%d, size=%d", from, size)
	}
	return from, size, nil
}
