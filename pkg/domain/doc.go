// Package domain contains the core entities of the herb traceability platform
// (users, farms, batches, supply chain records and marketplace items). The
// types are free of infrastructure concerns so storage, services and the HTTP
// layer can share them.
package domain
