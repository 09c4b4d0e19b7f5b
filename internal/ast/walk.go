package ast

// Inspect traverses the tree rooted at n in depth-first source order,
// calling f on every node. If f returns false the children of that node
// are skipped. Nil children (array holes, omitted clauses) are not
// visited.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Module:
		inspectStmts(n.Body, f)

	// statements
	case *ExprStmt:
		Inspect(n.Expr, f)
	case *BlockStmt:
		inspectStmts(n.Body, f)
	case *EmptyStmt, *DebuggerStmt:
	case *VarDecl:
		for _, d := range n.Decls {
			Inspect(d.ID, f)
			inspectExpr(d.Init, f)
		}
	case *FuncDecl:
		inspectIdent(n.ID, f)
		inspectFunction(n.Fn, f)
	case *ClassDecl:
		inspectIdent(n.ID, f)
		inspectClass(n.Class, f)
	case *IfStmt:
		Inspect(n.Test, f)
		Inspect(n.Cons, f)
		inspectStmt(n.Alt, f)
	case *ForStmt:
		if n.Init != nil {
			Inspect(n.Init, f)
		}
		inspectExpr(n.Test, f)
		inspectExpr(n.Update, f)
		Inspect(n.Body, f)
	case *ForInStmt:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
		Inspect(n.Body, f)
	case *ForOfStmt:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
		Inspect(n.Body, f)
	case *WhileStmt:
		Inspect(n.Test, f)
		Inspect(n.Body, f)
	case *DoWhileStmt:
		Inspect(n.Body, f)
		Inspect(n.Test, f)
	case *SwitchStmt:
		Inspect(n.Disc, f)
		for _, c := range n.Cases {
			inspectExpr(c.Test, f)
			inspectStmts(c.Cons, f)
		}
	case *TryStmt:
		Inspect(n.Block, f)
		if n.Handler != nil {
			if n.Handler.Param != nil {
				Inspect(n.Handler.Param, f)
			}
			Inspect(n.Handler.Body, f)
		}
		if n.Finalizer != nil {
			Inspect(n.Finalizer, f)
		}
	case *ThrowStmt:
		Inspect(n.Arg, f)
	case *ReturnStmt:
		inspectExpr(n.Arg, f)
	case *BreakStmt, *ContinueStmt:
	case *LabeledStmt:
		Inspect(n.Body, f)

	// module declarations
	case *ImportDecl:
		for _, s := range n.Specifiers {
			Inspect(s, f)
		}
		if n.Source != nil {
			Inspect(n.Source, f)
		}
	case *ImportDefaultSpec:
		inspectIdent(n.Local, f)
	case *ImportNamespaceSpec:
		inspectIdent(n.Local, f)
	case *ImportNamedSpec:
		inspectExpr(n.Imported, f)
		inspectIdent(n.Local, f)
	case *ExportNamedDecl:
		inspectStmt(n.Decl, f)
		for _, s := range n.Specifiers {
			inspectExpr(s.Local, f)
			inspectExpr(s.Exported, f)
		}
		if n.Source != nil {
			Inspect(n.Source, f)
		}
	case *ExportDefaultDecl:
		if n.Decl != nil {
			Inspect(n.Decl, f)
		}
	case *ExportAllDecl:
		if n.Source != nil {
			Inspect(n.Source, f)
		}

	// TS declarations
	case *TSInterfaceDecl:
		inspectIdent(n.ID, f)
		inspectTypeParams(n.TypeParams, f)
		inspectTypes(n.Extends, f)
		for _, m := range n.Body {
			inspectTypeMember(m, f)
		}
	case *TSTypeAliasDecl:
		inspectIdent(n.ID, f)
		inspectTypeParams(n.TypeParams, f)
		inspectType(n.TypeAnn, f)
	case *TSEnumDecl:
		inspectIdent(n.ID, f)
		for _, m := range n.Members {
			Inspect(m.ID, f)
			inspectExpr(m.Init, f)
		}
	case *TSModuleDecl:
		inspectExpr(n.ID, f)
		inspectStmts(n.Body, f)

	// expressions
	case *Ident:
		inspectType(n.TypeAnn, f)
	case *BinaryExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *LogicalExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *UnaryExpr:
		Inspect(n.Arg, f)
	case *UpdateExpr:
		Inspect(n.Arg, f)
	case *AssignExpr:
		Inspect(n.Target, f)
		Inspect(n.Value, f)
	case *CondExpr:
		Inspect(n.Test, f)
		Inspect(n.Cons, f)
		Inspect(n.Alt, f)
	case *CallExpr:
		Inspect(n.Callee, f)
		inspectExprs(n.Args, f)
		inspectTypes(n.TypeArgs, f)
	case *NewExpr:
		Inspect(n.Callee, f)
		inspectExprs(n.Args, f)
		inspectTypes(n.TypeArgs, f)
	case *ImportExpr:
		inspectExprs(n.Args, f)
	case *MemberExpr:
		Inspect(n.Obj, f)
		Inspect(n.Prop, f)
	case *SeqExpr:
		inspectExprs(n.Exprs, f)
	case *ArrayLit:
		inspectExprs(n.Elements, f)
	case *ObjectLit:
		for _, p := range n.Props {
			Inspect(p, f)
		}
	case *Property:
		Inspect(n.Key, f)
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *SpreadElement:
		Inspect(n.Arg, f)
	case *FuncExpr:
		inspectIdent(n.ID, f)
		inspectFunction(n.Fn, f)
	case *ClassExpr:
		inspectIdent(n.ID, f)
		inspectClass(n.Class, f)
	case *ArrowFunc:
		for _, p := range n.Params {
			Inspect(p.Pat, f)
		}
		inspectType(n.ReturnType, f)
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *TemplateLiteral:
		inspectExprs(n.Exprs, f)
	case *TaggedTemplate:
		Inspect(n.Tag, f)
		Inspect(n.Quasi, f)
	case *AwaitExpr:
		Inspect(n.Arg, f)
	case *YieldExpr:
		inspectExpr(n.Arg, f)
	case *TSAsExpr:
		Inspect(n.Expr, f)
		inspectType(n.TypeAnn, f)
	case *TSNonNull:
		Inspect(n.Expr, f)

	// patterns
	case *ArrayPat:
		for _, el := range n.Elements {
			if el != nil {
				Inspect(el, f)
			}
		}
		inspectType(n.TypeAnn, f)
	case *ObjectPat:
		for _, p := range n.Props {
			Inspect(p, f)
		}
		inspectType(n.TypeAnn, f)
	case *PatProperty:
		Inspect(n.Key, f)
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *AssignPat:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *RestElement:
		Inspect(n.Arg, f)
		inspectType(n.TypeAnn, f)

	// class members
	case *MethodDef:
		Inspect(n.Key, f)
		inspectFunction(n.Fn, f)
	case *PropDef:
		Inspect(n.Key, f)
		inspectType(n.TypeAnn, f)
		inspectExpr(n.Value, f)
	case *StaticBlock:
		Inspect(n.Body, f)

	// types
	case *TSTypeRef:
		inspectTypes(n.TypeArgs, f)
	case *TSUnion:
		inspectTypes(n.Types, f)
	case *TSIntersection:
		inspectTypes(n.Types, f)
	case *TSArrayType:
		inspectType(n.Elem, f)
	case *TSTupleType:
		inspectTypes(n.Elems, f)
	case *TSFuncType:
		for _, p := range n.Params {
			Inspect(p.Pat, f)
		}
		inspectTypeParams(n.TypeParams, f)
		inspectType(n.ReturnType, f)
	case *TSTypeLit:
		for _, m := range n.Members {
			inspectTypeMember(m, f)
		}
	case *TSConditionalType:
		inspectType(n.Check, f)
		inspectType(n.Extends, f)
		inspectType(n.True, f)
		inspectType(n.False, f)
	case *TSIndexedAccess:
		inspectType(n.Obj, f)
		inspectType(n.Index, f)
	case *TSTypeOperator:
		inspectType(n.TypeAnn, f)
	case *TSLiteralType:
		Inspect(n.Lit, f)
	case *TSTypePredicate:
		inspectType(n.TypeAnn, f)
	}
}

func inspectStmts(list []Stmt, f func(Node) bool) {
	for _, s := range list {
		Inspect(s, f)
	}
}

func inspectStmt(s Stmt, f func(Node) bool) {
	if s != nil {
		Inspect(s, f)
	}
}

func inspectExprs(list []Expr, f func(Node) bool) {
	for _, e := range list {
		if e != nil {
			Inspect(e, f)
		}
	}
}

func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectIdent(id *Ident, f func(Node) bool) {
	if id != nil {
		Inspect(id, f)
	}
}

func inspectFunction(fn *Function, f func(Node) bool) {
	if fn == nil {
		return
	}
	inspectTypeParams(fn.TypeParams, f)
	for _, p := range fn.Params {
		Inspect(p.Pat, f)
	}
	inspectType(fn.ReturnType, f)
	if fn.Body != nil {
		Inspect(fn.Body, f)
	}
}

func inspectClass(cls *Class, f func(Node) bool) {
	if cls == nil {
		return
	}
	inspectExpr(cls.SuperClass, f)
	inspectTypes(cls.SuperTypeArgs, f)
	inspectTypes(cls.Implements, f)
	inspectTypeParams(cls.TypeParams, f)
	for _, m := range cls.Body {
		Inspect(m, f)
	}
}

func inspectTypeMember(m *TSTypeMember, f func(Node) bool) {
	if m == nil {
		return
	}
	inspectExpr(m.Key, f)
	for _, p := range m.Params {
		Inspect(p.Pat, f)
	}
	inspectType(m.TypeAnn, f)
}

func inspectTypeParams(list []*TSTypeParam, f func(Node) bool) {
	for _, tp := range list {
		inspectType(tp.Constraint, f)
		inspectType(tp.Default, f)
	}
}

func inspectType(t TSType, f func(Node) bool) {
	if t != nil {
		Inspect(t, f)
	}
}

func inspectTypes(list []TSType, f func(Node) bool) {
	for _, t := range list {
		inspectType(t, f)
	}
}
