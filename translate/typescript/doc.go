// Package typescript renders schema nodes as TypeScript type declarations.
//
// An object schema becomes an exported type alias:
//
//	export type User = {
//	  email: string;
//	  age?: number;
//	  status: EStatus;
//	};
//
// Properties missing from the parent's required list are marked optional.
// String enums hoist to an exported enum named "E" plus the title-cased key,
// appended after the types. Nested objects are written inline unless
// Options.InlineObjects is false, in which case each one becomes its own
// exported type.
//
// References render as the referenced type name. Unrecognized type names
// render as unknown, except "date" and "datetime", which render as Date.
package typescript
