/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. This package
de-couples CSS handling from the DOM by introducing interfaces StyleSheet
and Rule. Concrete implementations may be found in sub-packages (e.g.,
package douceuradapter, which relies on github.com/aymerick/douceur).

Style sheets embedded in a document change whenever a <style> element is
inserted or removed, or when its text is modified. Type Cache holds the
style sheets of a document and drops them as soon as change notifications
of the document signal such a modification. Style sheets are re-extracted
lazily, on the next request.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'dom.style'.
func tracer() tracing.Trace {
	return tracing.Select("dom.style")
}
