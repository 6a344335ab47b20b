// See types.go for the Stop/Bus/Catalogue types and their invariants, and
// methods_stops.go / methods_buses.go for the mutating and read-only
// operations.
package catalogue
