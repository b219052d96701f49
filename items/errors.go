// SPDX-License-Identifier: MIT

package items

import "errors"

var (
	// ErrItemCount indicates itemCount < 1.
	ErrItemCount = errors.New("items: item count must be >= 1")

	// ErrScaleLevels indicates scaleLevels < 1.
	ErrScaleLevels = errors.New("items: scale levels must be >= 1")

	// ErrEmptyLatent indicates an empty latent vector.
	ErrEmptyLatent = errors.New("items: empty latent scores")

	// ErrLoading indicates a loading outside (0, 1].
	ErrLoading = errors.New("items: loading must lie in (0, 1]")

	// ErrNilRand indicates Generate was called without a random source.
	ErrNilRand = errors.New("items: nil *rand.Rand")
)
