/*
Package policy restricts the registry's algorithm families to the set a
key-management component is willing to accept.

Policies are YAML documents:

	minimum_requirement: RECOMMENDED
	families: [RSA, EC]
	allow: [RS256, ES256, PS256]

Apply returns a new family; the registry itself is never modified.
*/
package policy
