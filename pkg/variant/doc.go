// Package variant provides closed tagged unions with exhaustive match
// dispatch. A value always belongs to exactly one case, selected once at
// construction; each case carries its own payload record and no other.
//
// Highlights:
// - Of2/Of3: two- and three-case variants with private state behind constructors
// - First/Second (and First3/Second3/Third3): one constructor per case
// - Match2/Match3: dispatch to exactly one handler, one required handler per case
// - Tag/Id/CreatedAt: read-only discriminant and instance provenance
//
// Result and Option in the subpackages are instantiations of this core, not
// separate implementations; Of3 serves user-defined unions.
package variant
