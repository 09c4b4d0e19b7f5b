package fuzztests

import (
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB cap for the seed corpus

var languageSeeds = []string{
	"",
	"const x = 1;\n",
	"let s = `tpl ${a + b} tail`;\n",
	"import a, { b as c } from './mod'; export * as ns from 'pkg';\n",
	"async function* g() { yield* inner(); await done; }\n",
	"class C extends B { static #n = 1; get v() { return this.#n; } }\n",
	"interface I<T extends string = string> { readonly [k: string]: T; }\n",
	"type U = A | B & C extends D ? E : F;\n",
	"declare module 'ext' { }\nnamespace A.B { export const v = 1; }\n",
	"enum E { A = 1, B = 'b' }\nconst enum F { X }\n",
	"for await (const x of src) { if (x ?? y) break; }\n",
	"label: for (;;) { continue label; }\n",
	"const r = /ab+c/gi; a?.b?.[0]?.(x);\n",
	"x = { ...rest, [key]: 1, get p() { return 2; } };\n",
	"const f = <T,>(v: T): T => v as T;\n",
	"import('./dyn').then(m => m.default);\nimport.meta.url;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add(clampSeed([]byte(seed)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
