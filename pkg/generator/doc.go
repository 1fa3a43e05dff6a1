// Package generator turns a JSON specification of translatable literals into
// typed accessor functions.
//
// A specification maps literal names to their shape:
//
//	{
//	    "Yes": { "default": "Yes" },
//	    "MyNameIs": { "default": "My name is {name}", "substitutions": ["name"] },
//	    "People": { "default": "There is {count} person|There are {count} people", "pluralise": true }
//	}
//
// Generate emits one accessor per literal, taking a string parameter per
// substitution and an int count parameter when pluralised:
//
//	func MyNameIs(name string) translator.Literal {
//	    return translator.NewLiteral("MyNameIs",
//	        translator.WithDefault("My name is {name}"),
//	        translator.WithSubstitution("name", name))
//	}
//
// The generated ids are the keys the runtime expects in translation files, so
// the specification is authored once and drives both sides.
package generator
