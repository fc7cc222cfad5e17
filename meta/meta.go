// meta/meta.go
package meta

// DEFAULT_PLIES defines the search depth of engines that are not given one.
const DEFAULT_PLIES = 2

// MAX_PLIES caps the depth of any game tree.
const MAX_PLIES = 16

// MAX_TURNS defines the number of moves after which the game loop gives up.
const MAX_TURNS = 300
