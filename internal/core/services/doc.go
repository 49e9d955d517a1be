// Package services contains the core business logic, implementing the
// driving ports using the driven ports. Services are pure orchestration:
// they depend on interfaces, never on concrete adapters.
package services
