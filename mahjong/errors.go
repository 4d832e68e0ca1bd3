package mahjong

import "errors"

var (
	ErrHandSize    = errors.New("hand must hold exactly 14 tiles")
	ErrInvalidTile = errors.New("invalid tile")
	ErrInvalidRule = errors.New("invalid rule")
	ErrParse       = errors.New("cannot parse tiles")
)
