package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a 1D Gaussian kernel using radius as sigma.
// The kernel is normalized so all values sum to 1.
//
// The kernel size is 2*ceil(radius*3) + 1, which covers 99.7% of the
// distribution. For radius <= 0 it returns the identity kernel [1].
func GaussianKernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1}
	}

	halfSize := int(math.Ceil(radius * 3))
	size := halfSize*2 + 1
	kernel := make([]float64, size)

	twoSigmaSq := 2 * radius * radius
	var sum float64
	for i := range kernel {
		x := float64(i - halfSize)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}

	inv := 1 / sum
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// BoxKernel generates a 1D box kernel of size 2*radius+1 with equal weights.
// Three box passes approximate a Gaussian.
func BoxKernel(radius int) []float64 {
	if radius <= 0 {
		return []float64{1}
	}

	size := radius*2 + 1
	kernel := make([]float64, size)
	val := 1 / float64(size)
	for i := range kernel {
		kernel[i] = val
	}
	return kernel
}

// kernelCache keeps Gaussian kernels keyed by radius quantized to 0.01.
// A new image usually means a new radius, so the cache stays small.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float64
	maxLen int
}

var defaultKernelCache = newKernelCache(32)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float64),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(radius float64) []float64 {
	key := int(math.Round(radius * 100))

	c.mu.RLock()
	kernel, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return kernel
	}

	kernel = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		clear(c.cache)
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// len returns the number of cached kernels.
func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// CachedGaussianKernel returns a shared Gaussian kernel for radius.
// The returned slice must not be modified.
func CachedGaussianKernel(radius float64) []float64 {
	return defaultKernelCache.get(radius)
}
