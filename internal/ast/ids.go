package ast

type (
	FileID uint32
	ItemID uint32
	PathID uint32
	TypeID uint32

	UseTreeID        uint32
	GenericArgListID uint32
	ParamListID      uint32
	PayloadID        uint32
)

const (
	NoFileID           FileID           = 0
	NoItemID           ItemID           = 0
	NoPathID           PathID           = 0
	NoTypeID           TypeID           = 0
	NoUseTreeID        UseTreeID        = 0
	NoGenericArgListID GenericArgListID = 0
	NoParamListID      ParamListID      = 0
	NoPayloadID        PayloadID        = 0
)

func (id FileID) IsValid() bool           { return id != NoFileID }
func (id ItemID) IsValid() bool           { return id != NoItemID }
func (id PathID) IsValid() bool           { return id != NoPathID }
func (id TypeID) IsValid() bool           { return id != NoTypeID }
func (id UseTreeID) IsValid() bool        { return id != NoUseTreeID }
func (id GenericArgListID) IsValid() bool { return id != NoGenericArgListID }
func (id ParamListID) IsValid() bool      { return id != NoParamListID }
func (id PayloadID) IsValid() bool        { return id != NoPayloadID }
