package render

import (
	"encoding/xml"
	"strings"
	"text/template"
)

const (
	nsA = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"`
	nsR = `xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`
	nsP = `xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

	relNS      = "http://schemas.openxmlformats.org/package/2006/relationships"
	relTypeDoc = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	ctPML      = "application/vnd.openxmlformats-officedocument.presentationml"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	groupShapeProps = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`
)

var partTemplates = template.Must(template.New("pptx").Funcs(template.FuncMap{
	"xml": escapeXML,
}).Parse(strings.NewReplacer(
	"{{nsA}}", nsA,
	"{{nsR}}", nsR,
	"{{nsP}}", nsP,
	"{{relNS}}", relNS,
	"{{relType}}", relTypeDoc,
	"{{ctPML}}", ctPML,
	"{{header}}", xmlHeader,
	"{{group}}", groupShapeProps,
).Replace(templateSource)))

// escapeXML escapes text for element content. Characters that are not
// legal in XML are replaced with U+FFFD.
func escapeXML(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

const templateSource = `
{{define "contentTypes"}}{{header}}<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/ppt/presentation.xml" ContentType="{{ctPML}}.presentation.main+xml"/>
<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="{{ctPML}}.slideMaster+xml"/>
<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="{{ctPML}}.slideLayout+xml"/>
<Override PartName="/ppt/slideLayouts/slideLayout2.xml" ContentType="{{ctPML}}.slideLayout+xml"/>
<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
{{range .Slides}}<Override PartName="/ppt/slides/slide{{.Number}}.xml" ContentType="{{ctPML}}.slide+xml"/>
{{end}}<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>{{end}}

{{define "rootRels"}}{{header}}<Relationships xmlns="{{relNS}}">
<Relationship Id="rId1" Type="{{relType}}/officeDocument" Target="ppt/presentation.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="{{relType}}/extended-properties" Target="docProps/app.xml"/>
</Relationships>{{end}}

{{define "core"}}{{header}}<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
<dc:title>{{xml .Title}}</dc:title>
<dc:creator>{{xml .Author}}</dc:creator>
<dcterms:created xsi:type="dcterms:W3CDTF">{{.Created}}</dcterms:created>
<dcterms:modified xsi:type="dcterms:W3CDTF">{{.Created}}</dcterms:modified>
</cp:coreProperties>{{end}}

{{define "app"}}{{header}}<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
<Application>deckgest</Application>
<Slides>{{len .Slides}}</Slides>
</Properties>{{end}}

{{define "presentation"}}{{header}}<p:presentation {{nsA}} {{nsR}} {{nsP}} saveSubsetFonts="1">
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>
<p:sldIdLst>{{range .Slides}}<p:sldId id="{{.ID}}" r:id="{{.RelID}}"/>{{end}}</p:sldIdLst>
<p:sldSz cx="{{.Width}}" cy="{{.Height}}"/>
<p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>{{end}}

{{define "presentationRels"}}{{header}}<Relationships xmlns="{{relNS}}">
<Relationship Id="rId1" Type="{{relType}}/slideMaster" Target="slideMasters/slideMaster1.xml"/>
<Relationship Id="rId2" Type="{{relType}}/theme" Target="theme/theme1.xml"/>
{{range .Slides}}<Relationship Id="{{.RelID}}" Type="{{relType}}/slide" Target="slides/slide{{.Number}}.xml"/>
{{end}}</Relationships>{{end}}

{{define "master"}}{{header}}<p:sldMaster {{nsA}} {{nsR}} {{nsP}}>
<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>{{group}}</p:spTree></p:cSld>
<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/><p:sldLayoutId id="2147483650" r:id="rId2"/></p:sldLayoutIdLst>
</p:sldMaster>{{end}}

{{define "masterRels"}}{{header}}<Relationships xmlns="{{relNS}}">
<Relationship Id="rId1" Type="{{relType}}/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
<Relationship Id="rId2" Type="{{relType}}/slideLayout" Target="../slideLayouts/slideLayout2.xml"/>
<Relationship Id="rId3" Type="{{relType}}/theme" Target="../theme/theme1.xml"/>
</Relationships>{{end}}

{{define "layout"}}{{header}}<p:sldLayout {{nsA}} {{nsR}} {{nsP}} type="{{.Type}}" preserve="1">
<p:cSld name="{{.Name}}"><p:spTree>{{group}}</p:spTree></p:cSld>
<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>
</p:sldLayout>{{end}}

{{define "layoutRels"}}{{header}}<Relationships xmlns="{{relNS}}">
<Relationship Id="rId1" Type="{{relType}}/slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>{{end}}

{{define "slide"}}{{header}}<p:sld {{nsA}} {{nsR}} {{nsP}}>
<p:cSld><p:spTree>{{group}}
<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>
<p:spPr><a:xfrm><a:off x="{{.TitleBox.X}}" y="{{.TitleBox.Y}}"/><a:ext cx="{{.TitleBox.CX}}" cy="{{.TitleBox.CY}}"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>
<p:txBody><a:bodyPr wrap="square" anchor="{{.TitleAnchor}}"><a:normAutofit/></a:bodyPr><a:lstStyle/>
<a:p><a:pPr algn="{{.TitleAlign}}"/><a:r><a:rPr lang="en-US" sz="{{.TitleSize}}" b="1" dirty="0"><a:latin typeface="+mj-lt"/></a:rPr><a:t>{{xml .Title}}</a:t></a:r></a:p>
</p:txBody></p:sp>
<p:sp><p:nvSpPr><p:cNvPr id="3" name="Body"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>
<p:spPr><a:xfrm><a:off x="{{.BodyBox.X}}" y="{{.BodyBox.Y}}"/><a:ext cx="{{.BodyBox.CX}}" cy="{{.BodyBox.CY}}"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>
<p:txBody><a:bodyPr wrap="square" anchor="t"><a:normAutofit/></a:bodyPr><a:lstStyle/>
{{$size := .BodySize}}{{$align := .BodyAlign}}{{range .Paragraphs}}{{if .}}<a:p><a:pPr algn="{{$align}}"/><a:r><a:rPr lang="en-US" sz="{{$size}}" dirty="0"/><a:t>{{xml .}}</a:t></a:r></a:p>{{else}}<a:p><a:pPr algn="{{$align}}"/><a:endParaRPr lang="en-US" sz="{{$size}}" dirty="0"/></a:p>{{end}}
{{end}}</p:txBody></p:sp>
</p:spTree></p:cSld>
<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>
</p:sld>{{end}}

{{define "slideRels"}}{{header}}<Relationships xmlns="{{relNS}}">
<Relationship Id="rId1" Type="{{relType}}/slideLayout" Target="../slideLayouts/slideLayout{{.Layout}}.xml"/>
</Relationships>{{end}}

{{define "theme"}}{{header}}<a:theme {{nsA}} name="deckgest">
<a:themeElements>
<a:clrScheme name="deckgest">
<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
<a:dk2><a:srgbClr val="1F2937"/></a:dk2>
<a:lt2><a:srgbClr val="F3F4F6"/></a:lt2>
<a:accent1><a:srgbClr val="2563EB"/></a:accent1>
<a:accent2><a:srgbClr val="059669"/></a:accent2>
<a:accent3><a:srgbClr val="D97706"/></a:accent3>
<a:accent4><a:srgbClr val="DC2626"/></a:accent4>
<a:accent5><a:srgbClr val="7C3AED"/></a:accent5>
<a:accent6><a:srgbClr val="0891B2"/></a:accent6>
<a:hlink><a:srgbClr val="2563EB"/></a:hlink>
<a:folHlink><a:srgbClr val="7C3AED"/></a:folHlink>
</a:clrScheme>
<a:fontScheme name="deckgest">
<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>
<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>
</a:fontScheme>
<a:fmtScheme name="deckgest">
<a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>
<a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>
<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>
<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst>
</a:fmtScheme>
</a:themeElements>
<a:objectDefaults/>
<a:extraClrSchemeLst/>
</a:theme>{{end}}
`
