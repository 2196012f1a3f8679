// Package checklist prints status-line items — the most common output
// pattern in CLI tools — and grouped lists of them.
//
// # Items
//
// Each item is a 2-space-indented line with a colored status icon:
//
//	checklist.Ok("tokio 1.40 (up to date)")       //   ✓ tokio 1.40 (up to date)
//	checklist.Fail("openssl 1.1 (vulnerable)")    //   ✗ openssl 1.1 (vulnerable)
//	checklist.Skip("wasm-bindgen (n/a)")          //   ○ wasm-bindgen (n/a)
//	checklist.Pending("rustls (downloading...)")  //   → rustls (downloading...)
//
// # Groups
//
// A Group collects (icon, label, detail) items under a bold title and
// renders them together. A group that ends up with zero items renders
// nothing at all — not even its title — which keeps output clean when
// a category has no entries:
//
//	g := checklist.NewGroup("Installed packages")
//	for _, pkg := range installed {
//	    g.Item(icons.Ok(), pkg.Name, pkg.Size)
//	}
//	g.Print()
package checklist
