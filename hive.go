// Package hive implements a compact, block-clustered Entity Component System
// storage core for Go.
//
// Features:
// - Stable (index, version) entity handles with version checks on access.
// - One type-erased chunked pool per component type; pointers never move.
// - 64-bit component masks for O(1) has/superset tests.
// - Archetype blocks of 64 slots: entities created with the same component
//   set land in the same contiguous slot ranges, so mask-filtered scans stay
//   cache friendly.
// - Per-archetype free lists keyed by each block's original mask, preserving
//   clustering across destroy/create churn.
// - Generic Add/Set/Get/Has/Remove plus generated arity variants for
//   creation, filters and builders.
//
//go:generate go run ./cmd/generate
package hive

// MaxComponentTypes caps the number of distinct component types a process may
// register. One bit of Mask per type.
const MaxComponentTypes = 64

// BlockSize is the number of entity slots per archetype block. Blocks are
// aligned, so the block of slot s is s / BlockSize.
const BlockSize = 64

// chunkElems is the number of component slots per pool chunk.
const chunkElems = 64

// defaultInitialCapacity is the entity table reservation used by NewWorld
// when no capacity is given.
const defaultInitialCapacity = 8192
