// Package loader provides the feature loading system used by the start command.
//
// Each feature implements Feature and registers its own routes. The Manager keeps the
// registry and loads every enabled feature in registration order.
//
//	mgr := loader.NewManager()
//	mgr.Register(reconciliation.NewFeature(svc))
//	if err := mgr.LoadAll(app); err != nil {
//	    log.Fatal(err)
//	}
package loader
