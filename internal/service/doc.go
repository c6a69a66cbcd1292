// Package service holds the behavioral core of the card server: the access
// coordinator serializing all collection use, the sync executor turning
// attempts into typed outcomes, the auto-sync scheduler, and the request
// bridge dispatching protocol actions to the engine.
package service
