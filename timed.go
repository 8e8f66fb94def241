package gcd

import "time"

// Time runs op and reports how many whole milliseconds it took alongside its
// result and error, which are passed through untouched. Fast operations
// legitimately report 0.
func Time(op func() (int32, error)) (d int32, elapsedMs int64, err error) {
	start := time.Now()
	d, err = op()
	return d, time.Since(start).Milliseconds(), err
}

// TimedEuclidean is like Euclidean but also reports the elapsed time.
func TimedEuclidean(a, b int32) (d int32, elapsedMs int64, err error) {
	return Time(func() (int32, error) { return Euclidean(a, b) })
}

// TimedEuclidean3 is like Euclidean3 but also reports the elapsed time.
func TimedEuclidean3(a, b, c int32) (d int32, elapsedMs int64, err error) {
	return Time(func() (int32, error) { return Euclidean3(a, b, c) })
}

// TimedEuclideanN is like EuclideanN but also reports the elapsed time.
func TimedEuclideanN(a, b int32, others ...int32) (d int32, elapsedMs int64, err error) {
	return Time(func() (int32, error) { return EuclideanN(a, b, others...) })
}

// TimedStein is like Stein but also reports the elapsed time.
func TimedStein(a, b int32) (d int32, elapsedMs int64, err error) {
	return Time(func() (int32, error) { return Stein(a, b) })
}

// TimedStein3 is like Stein3 but also reports the elapsed time.
func TimedStein3(a, b, c int32) (d int32, elapsedMs int64, err error) {
	return Time(func() (int32, error) { return Stein3(a, b, c) })
}

// TimedSteinN is like SteinN but also reports the elapsed time.
func TimedSteinN(a, b int32, others ...int32) (d int32, elapsedMs int64, err error) {
	return Time(func() (int32, error) { return SteinN(a, b, others...) })
}
