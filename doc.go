/*
Package mrcfg constructs the Maximal-Repeat Context-Free Grammar (MR-CFG) of
a text: a straight-line grammar whose non-terminals correspond to maximal
repeats of the text, derived from its LCP-intervals.

Package structure is as follows:

■ csa: owns the text and its suffix array, and answers the handful of
index queries (SA, ISA, C, char2comp/comp2char, IntervalSymbols) the rest of
the module needs.

■ lcp: enumerates LCP-intervals of a csa.Index in shortest-first order.

■ stabber: answers point-stabbing queries over a laminar family of
intervals, with three interchangeable implementations.

■ identifier: assigns stable non-terminal IDs to maximal repeats.

■ grammar: drives csa+lcp+identifier+stabber to build a Grammar.

The root package holds vocabulary shared by all of the above.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 mr-cfg contributors

*/
package mrcfg
