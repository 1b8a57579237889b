package catalog

import "errors"

var (
	ErrNoEpisodes     = errors.New("catalog: no playable episodes")
	ErrUnknownEpisode = errors.New("catalog: unknown episode")
)
