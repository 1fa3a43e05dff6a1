// Package locale picks the best translation language for an HTTP
// Accept-Language header using BCP 47 matching.
//
// It is a thin bridge between incoming requests and the loader package:
//
//	dicts, _ := loader.LoadDir(translationsFS)
//	langs := slices.Sorted(maps.Keys(dicts))
//
//	lang := locale.Match(r.Header.Get("Accept-Language"), langs)
//	t := translator.New().Push(dicts[lang])
package locale
