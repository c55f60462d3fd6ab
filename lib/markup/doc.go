// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package markup parses tuimark documents: XML-like declarative
// descriptions of a terminal UI. A document is a tree of layout,
// container, paragraph, button, and dialog elements, with an optional
// styles block holding a stylesheet:
//
//	<layout id="root" direction="vertical">
//	  <styles>
//	    button { fg: red }
//	    #footer { weight: bold }
//	  </styles>
//	  <container id="top" constraint="3" border="all" title="Nav">
//	    <p align="center">hello</p>
//	  </container>
//	  <container id="body" constraint="10min">
//	    <button id="ok" action="confirm" index="1">OK</button>
//	  </container>
//	  <dialog id="quit" show="show_quit" buttons="Yes|No">
//	    <layout direction="vertical">
//	      <container><p align="center">Really quit?</p></container>
//	    </layout>
//	  </dialog>
//	</layout>
//
// Parsing happens once at load time and produces an immutable [Node]
// tree plus the raw stylesheet text (parsed by lib/style). Validation
// is front-loaded: unknown tags, duplicate ids, malformed nesting, and
// unparsable constraints are all load-time errors, so nothing reaches
// the runtime loop with a structurally broken UI. Unknown attributes
// are ignored for forward compatibility.
package markup
