/*
Package ports defines the driven ports (interfaces) for the Dialogic portrait engine.

These interfaces decouple the directive engine from external implementations,
allowing it to work against any layer-tree backend (an in-memory fake, a
host-engine scene bridge) and any session storage.

# Key Interfaces

  - LayerTree: The host capability the evaluator mutates (resolve, siblings, show, hide).
  - ProfileLoader: Responsible for loading character Profile definitions.
  - StateStore: Responsible for persisting and loading preview session State.
  - DistributedLocker: Provides distributed locking for concurrent session access.
*/
package ports
