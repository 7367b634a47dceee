package source

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/json"
	"github.com/vk/durconv/internal/pipeline"
	"github.com/vk/durconv/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// loadHCL accepts either a single expression, such as `["1sec", "2min"]`,
// or a body of attributes, which becomes a record in source order.
func loadHCL(filename string, src []byte) (pipeline.Data, hcl.Body, hcl.Diagnostics) {
	if looksLikeBody(filename, src) {
		file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
		if diags.HasErrors() {
			return pipeline.Data{}, nil, diags
		}
		v, moreDiags := bodyValue(src, file.Body.(*hclsyntax.Body))
		diags = append(diags, moreDiags...)
		return pipeline.FromValue(v), file.Body, diags
	}

	expr, diags := hclsyntax.ParseExpression(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return pipeline.Data{}, nil, diags
	}
	v, moreDiags := exprValue(src, expr)
	diags = append(diags, moreDiags...)
	return pipeline.FromValue(v), nil, diags
}

func loadJSON(filename string, src []byte) (pipeline.Data, hcl.Diagnostics) {
	expr, diags := json.ParseExpression(src, filename)
	if diags.HasErrors() {
		return pipeline.Data{}, diags
	}
	v, moreDiags := exprValue(src, expr)
	diags = append(diags, moreDiags...)
	return pipeline.FromValue(v), diags
}

// looksLikeBody reports whether src starts with an attribute or block
// definition rather than a bare expression. Empty input is an empty body.
func looksLikeBody(filename string, src []byte) bool {
	tokens, _ := hclsyntax.LexConfig(src, filename, hcl.InitialPos)
	var significant []hclsyntax.Token
	for _, tok := range tokens {
		switch tok.Type {
		case hclsyntax.TokenNewline, hclsyntax.TokenComment:
			continue
		}
		significant = append(significant, tok)
		if len(significant) == 2 {
			break
		}
	}
	if len(significant) == 0 || significant[0].Type == hclsyntax.TokenEOF {
		return true
	}
	if significant[0].Type != hclsyntax.TokenIdent || len(significant) < 2 {
		return false
	}
	switch significant[1].Type {
	case hclsyntax.TokenEqual, hclsyntax.TokenOBrace, hclsyntax.TokenOQuote, hclsyntax.TokenIdent:
		return true
	}
	return false
}

// bodyValue turns the attributes of body into a record ordered as they
// appear in the source.
func bodyValue(src []byte, body *hclsyntax.Body) (value.Value, hcl.Diagnostics) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return value.Value{}, diags
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	slices.SortFunc(sorted, func(a, b *hcl.Attribute) int {
		return a.NameRange.Start.Byte - b.NameRange.Start.Byte
	})

	rec := value.NewRecord()
	for _, attr := range sorted {
		v, moreDiags := exprValue(src, attr.Expr)
		diags = append(diags, moreDiags...)
		rec.Set(attr.Name, v)
	}
	return value.RecordOf(rec, body.SrcRange), diags
}

// exprValue walks a static expression tree. Tuples and objects are taken
// apart so every element keeps its own range; src, when known, is used to
// trim quotes from string ranges.
func exprValue(src []byte, expr hcl.Expression) (value.Value, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return value.Value{}, diags
	}

	ty := val.Type()
	switch {
	case ty.IsTupleType() || ty.IsListType():
		items, listDiags := hcl.ExprList(expr)
		if listDiags.HasErrors() {
			break
		}
		elems := make([]value.Value, 0, len(items))
		for _, item := range items {
			v, moreDiags := exprValue(src, item)
			diags = append(diags, moreDiags...)
			elems = append(elems, v)
		}
		return value.List(elems, expr.Range()), diags

	case ty.IsObjectType() || ty.IsMapType():
		pairs, mapDiags := hcl.ExprMap(expr)
		if mapDiags.HasErrors() {
			break
		}
		rec := value.NewRecord()
		for _, pair := range pairs {
			key, keyDiags := objectKey(pair.Key)
			diags = append(diags, keyDiags...)
			if keyDiags.HasErrors() {
				continue
			}
			v, moreDiags := exprValue(src, pair.Value)
			diags = append(diags, moreDiags...)
			rec.Set(key, v)
		}
		return value.RecordOf(rec, expr.Range()), diags

	case ty == cty.String:
		return value.FromCty(val, stringRange(src, expr, val)), diags
	}

	return value.FromCty(val, expr.Range()), diags
}

func objectKey(expr hcl.Expression) (string, hcl.Diagnostics) {
	raw, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	key, err := convert.Convert(raw, cty.String)
	if err != nil || key.IsNull() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid object key",
			Detail:   fmt.Sprintf("Object keys must be strings: %v.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return key.AsString(), nil
}

// stringRange returns the range of the string's content, without the
// surrounding quotes. When the source text differs from val, as it does
// for escape sequences, the whole literal is returned instead.
func stringRange(src []byte, expr hcl.Expression, val cty.Value) hcl.Range {
	rng := expr.Range()
	inner := rng
	if te, ok := expr.(*hclsyntax.TemplateExpr); ok && len(te.Parts) == 1 {
		inner = te.Parts[0].Range()
	} else {
		start, end := rng.Start.Byte, rng.End.Byte
		if src == nil || end-start < 2 || end > len(src) || src[start] != '"' || src[end-1] != '"' {
			return rng
		}
		inner.Start.Byte++
		inner.Start.Column++
		inner.End.Byte--
		inner.End.Column--
	}

	if !val.IsKnown() || val.IsNull() || !sourceMatches(src, inner, val.AsString()) {
		return rng
	}
	return inner
}

// sourceMatches reports whether rng covers exactly the bytes of s in src.
func sourceMatches(src []byte, rng hcl.Range, s string) bool {
	start, end := rng.Start.Byte, rng.End.Byte
	if start < 0 || start > end || end > len(src) {
		return false
	}
	return string(src[start:end]) == s
}
