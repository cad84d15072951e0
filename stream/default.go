package stream

func defaultWrapper(next *stream) []Option {
	defaultConsumer := func(e interface{}) {
		next.consumer(e)
	}
	defaultSettler := func(size int64) {
		next.settler(size)
	}
	defaultCleaner := func() {
		next.cleaner()
	}
	defaultCanceller := func() bool {
		return next.canceller()
	}
	return []Option{
		wrapConsumer(defaultConsumer),
		wrapSettler(defaultSettler),
		wrapCleaner(defaultCleaner),
		wrapCanceller(defaultCanceller),
	}
}
