package usecase

import "testing"

func Test_getIpfsUrl(t *testing.T) {
	type args struct {
		url string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "pinata",
			args: args{
				url: "https://gateway.pinata.cloud/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			},
			want: "ipfs://QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
		},
		{
			name: "ipfs.io",
			args: args{
				url: "https://ipfs.io/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.json",
			},
			want: "ipfs://QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.json",
		},
		{
			name: "noop",
			args: args{
				url: "https://some.url",
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getIpfsUrl(tt.args.url); got != tt.want {
				t.Errorf("getIpfsUrl() = %v, want %v", got, tt.want)
			}
		})
	}
}
