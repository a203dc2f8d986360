// Package core contains plumbing shared by the workflow packages: options
// carried through context (worker limit, logger), the bounded worker driver
// used to run independent tasks side by side, and channel helpers that let
// loops consume channel-fed sequences. It defines no workflow semantics.
package core
