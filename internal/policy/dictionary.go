package policy

import (
	"layeh.com/radius/rfc2865"
)

// dictionaryEntry は標準属性の辞書エントリ。
type dictionaryEntry struct {
	id  uint32
	typ AttributeType
}

// standardAttributes はオーバーライドで新規追加される属性のための
// 標準属性辞書（RFC 2865）。テンプレートに存在しない属性名が
// オーバーライドされた場合の属性ID・型の解決に使用する。
var standardAttributes = map[string]dictionaryEntry{
	"Service-Type":       {uint32(rfc2865.ServiceType_Type), TypeInteger},
	"Framed-Protocol":    {uint32(rfc2865.FramedProtocol_Type), TypeInteger},
	"Framed-IP-Address":  {uint32(rfc2865.FramedIPAddress_Type), TypeIPAddr},
	"Framed-IP-Netmask":  {uint32(rfc2865.FramedIPNetmask_Type), TypeIPAddr},
	"Filter-Id":          {uint32(rfc2865.FilterID_Type), TypeString},
	"Framed-MTU":         {uint32(rfc2865.FramedMTU_Type), TypeInteger},
	"Login-IP-Host":      {uint32(rfc2865.LoginIPHost_Type), TypeIPAddr},
	"Reply-Message":      {uint32(rfc2865.ReplyMessage_Type), TypeString},
	"Callback-Number":    {uint32(rfc2865.CallbackNumber_Type), TypeString},
	"Framed-Route":       {uint32(rfc2865.FramedRoute_Type), TypeString},
	"Class":              {uint32(rfc2865.Class_Type), TypeOctets},
	"Session-Timeout":    {uint32(rfc2865.SessionTimeout_Type), TypeInteger},
	"Idle-Timeout":       {uint32(rfc2865.IdleTimeout_Type), TypeInteger},
	"Termination-Action": {uint32(rfc2865.TerminationAction_Type), TypeInteger},
	"Port-Limit":         {uint32(rfc2865.PortLimit_Type), TypeInteger},
}

// LookupStandardAttribute は標準属性名から属性IDと型を引く。
// 未知の属性名の場合は ok=false を返す。
func LookupStandardAttribute(name string) (id uint32, typ AttributeType, ok bool) {
	e, ok := standardAttributes[name]
	if !ok {
		return 0, "", false
	}
	return e.id, e.typ, true
}
