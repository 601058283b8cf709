// Package mongoengine renders schema nodes as Python mongoengine document
// classes.
//
// Every object schema becomes a class deriving from the configured base
// class (Document by default). Each property becomes a typed class attribute
// assigned a mongoengine field:
//
//	class User(Document(collection='users')):
//	    email:str = StringField(required=True, unique=True)  # pyright: ignore
//	    status:EStatus = EnumField(EStatus, required=True)  # pyright: ignore
//
// String enums hoist to StrEnum classes emitted before the document classes.
// Nested objects hoist to their own classes and are linked with
// ReferenceField. Keyword arguments passed to the base class come from the
// schema's meta.baseclass_args mapping; string values there are copied as
// Python source.
//
// The output opens with translate.DepsMarker, which the merge step replaces
// with the collected import lines. Shapes mongoengine cannot express render
// as "?" and are reported as warnings.
package mongoengine
