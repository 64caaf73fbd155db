package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/aroth/blitzdeck/internal/deck"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const (
	nsDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// rootAttrs declares the three namespaces every presentationml part uses.
const rootAttrs = `xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRelationships + `" xmlns:p="` + nsPresentation + `"`

func contentTypesXML(slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const corePropsXML = xmlHeader +
	`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">` +
	`<dc:title>Word Slides</dc:title>` +
	`<dc:creator>blitzdeck</dc:creator>` +
	`</cp:coreProperties>`

func appPropsXML(slides int) string {
	return xmlHeader +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
		`<Application>blitzdeck</Application>` +
		fmt.Sprintf(`<Slides>%d</Slides>`, slides) +
		`</Properties>`
}

func presentationXML(slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + rootAttrs + `>`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 0; i < slides; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d" type="screen4x3"/>`, SlideWidthEMU, SlideHeightEMU)
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, SlideHeightEMU, SlideWidthEMU)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRelsXML(slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 0; i < slides; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+2, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// emptySpTree is the minimal shape tree master, layout, and slides share.
const emptySpTree = `<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

const slideMasterXML = xmlHeader +
	`<p:sldMaster ` + rootAttrs + `>` +
	`<p:cSld>` +
	`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>` +
	emptySpTree + `</p:spTree>` +
	`</p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

const slideMasterRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

const slideLayoutXML = xmlHeader +
	`<p:sldLayout ` + rootAttrs + ` type="blank">` +
	`<p:cSld name="Blank">` + emptySpTree + `</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const slideLayoutRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

const slideRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`</Relationships>`

// slideXML renders one slide part: a single borderless text box positioned
// by the geometry directive, plus the uniform auto-advance transition.
func slideXML(s deck.SlideDescriptor) string {
	g := s.Geometry

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + rootAttrs + `>`)
	b.WriteString(`<p:cSld>` + emptySpTree)

	b.WriteString(`<p:sp>`)
	b.WriteString(`<p:nvSpPr><p:cNvPr id="2" name="Word"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`)
	fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`,
		g.Frame.LeftEMU, g.Frame.TopEMU, g.Frame.WidthEMU, g.Frame.HeightEMU)

	b.WriteString(`<p:txBody>`)
	fmt.Fprintf(&b, `<a:bodyPr wrap="%s" lIns="0" tIns="0" rIns="0" bIns="0" anchor="%s" anchorCtr="%s">%s</a:bodyPr>`,
		wrapAttr(g.WrapEnabled), anchorAttr(g.AnchorVertical), boolAttr(g.AnchorHorizontal == deck.AnchorCenter), autofitElem(g.AutofitEnabled))
	b.WriteString(`<a:lstStyle/>`)
	fmt.Fprintf(&b, `<a:p><a:pPr algn="%s"/><a:r>`, algnAttr(g.AnchorHorizontal))
	fmt.Fprintf(&b, `<a:rPr lang="de-DE" sz="%d" b="%s" dirty="0">`, s.FontSize*100, boolAttr(g.Bold))
	fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, strings.ToUpper(g.ColorRGB))
	fmt.Fprintf(&b, `<a:latin typeface="%s"/></a:rPr>`, escapeXML(g.FontName))
	fmt.Fprintf(&b, `<a:t>%s</a:t></a:r></a:p>`, escapeXML(s.Word))
	b.WriteString(`</p:txBody>`)
	b.WriteString(`</p:sp>`)

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	if s.Advance != nil {
		fmt.Fprintf(&b, `<p:transition spd="fast" advClick="%s" advTm="%d"/>`,
			boolAttr(s.Advance.AllowClick), s.Advance.AfterMillis)
	}
	b.WriteString(`</p:sld>`)
	return b.String()
}

func wrapAttr(enabled bool) string {
	if enabled {
		return "square"
	}
	return "none"
}

func anchorAttr(a deck.Anchor) string {
	switch a {
	case deck.AnchorStart:
		return "t"
	case deck.AnchorEnd:
		return "b"
	default:
		return "ctr"
	}
}

func algnAttr(a deck.Anchor) string {
	switch a {
	case deck.AnchorStart:
		return "l"
	case deck.AnchorEnd:
		return "r"
	default:
		return "ctr"
	}
}

func autofitElem(enabled bool) string {
	if enabled {
		return `<a:normAutofit/>`
	}
	return `<a:noAutofit/>`
}

func boolAttr(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
